package buffers

// BufferSize is the size of the buffers used when copying or scanning streams
const BufferSize = 16384
